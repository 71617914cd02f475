package constants

// Redis key formats
const (
	KeyTripSnapshot = "trip:snapshot:%s" // Format: trip:snapshot:{user_id}
	KeyCallLock     = "call:lock:%s"     // Format: call:lock:{scope}
	KeyCallLockAll  = "call:lock:global"
)
