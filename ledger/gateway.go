package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// AdmissionController guards the payment rail's single collection reference:
// the receiving QR supports one outstanding payment at a time, so at most one
// deposit lease exists process-wide. A lease auto-expires after the configured
// TTL so a lost gateway callback cannot wedge the slot forever.
type AdmissionController struct {
	mu  sync.Mutex
	ttl time.Duration

	leaseID   string
	amount    float64
	expiresAt time.Time

	now func() time.Time
}

func NewAdmissionController(ttl time.Duration) *AdmissionController {
	return &AdmissionController{ttl: ttl, now: time.Now}
}

// Gateway is the process-wide admission controller, set once at startup.
var Gateway *AdmissionController

// InitGateway installs the singleton used by the deposit and webhook paths.
func InitGateway(ttl time.Duration) {
	Gateway = NewAdmissionController(ttl)
}

// Acquire grants a new lease for a deposit of the given amount, or fails fast
// with ErrGatewayBusy while an unexpired lease is held.
func (a *AdmissionController) Acquire(amount float64) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.leaseID != "" && a.now().Before(a.expiresAt) {
		return "", ErrGatewayBusy
	}

	a.leaseID = uuid.NewString()
	a.amount = amount
	a.expiresAt = a.now().Add(a.ttl)
	return a.leaseID, nil
}

// Release clears the slot, but only for the lease that holds it. A stale
// release after expiry and re-acquisition must not evict the new holder.
func (a *AdmissionController) Release(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.leaseID == id {
		a.leaseID = ""
		a.amount = 0
		a.expiresAt = time.Time{}
	}
}

// Current returns the outstanding lease, if any. The webhook reconciler
// matches pending deposits against it.
func (a *AdmissionController) Current() (string, float64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.leaseID == "" || !a.now().Before(a.expiresAt) {
		return "", 0, false
	}
	return a.leaseID, a.amount, true
}
