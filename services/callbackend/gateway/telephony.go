package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"

	httpclient "github.com/piresc/wakestop/internal/pkg/http"
	"github.com/piresc/wakestop/internal/pkg/models"
)

const defaultWakeMessage = "Wake up! You are approaching your stop."

// TelephonyGW places calls through a Twilio-compatible REST API
type TelephonyGW struct {
	client   *httpclient.Client
	cfg      models.TelephonyConfig
	callPath string
}

type callResource struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// NewTelephonyGW creates a telephony gateway. client must carry the provider's
// base URL and, optionally, a circuit breaker.
func NewTelephonyGW(client *httpclient.Client, cfg models.TelephonyConfig) *TelephonyGW {
	client.SetBasicAuth(cfg.AccountSID, cfg.AuthToken)
	if cfg.Message == "" {
		cfg.Message = defaultWakeMessage
	}
	return &TelephonyGW{
		client:   client,
		cfg:      cfg,
		callPath: fmt.Sprintf("/2010-04-01/Accounts/%s/Calls.json", url.PathEscape(cfg.AccountSID)),
	}
}

// Twiml returns the call instructions that play the wake-up message
func (g *TelephonyGW) Twiml() string {
	return fmt.Sprintf("<Response><Say>%s</Say></Response>", html.EscapeString(g.cfg.Message))
}

// Dial calls the E.164 number to from the configured caller id
func (g *TelephonyGW) Dial(ctx context.Context, to string) (models.CallResult, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", g.cfg.CallerID)
	form.Set("Twiml", g.Twiml())

	resp, err := g.client.PostForm(ctx, g.callPath, form, nil)
	if err != nil {
		return models.CallResult{}, fmt.Errorf("telephony request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return models.CallResult{}, fmt.Errorf("telephony provider rejected call: %w", httpclient.ReadError(resp))
	}
	defer resp.Body.Close()

	var call callResource
	if err := json.NewDecoder(resp.Body).Decode(&call); err != nil {
		return models.CallResult{}, fmt.Errorf("failed to decode telephony response: %w", err)
	}

	return models.CallResult{
		Result: call.Status,
		CallID: call.SID,
	}, nil
}
