package deps

import (
	"time"

	"github.com/CourageAllien/revshare/internal/booking"
	"github.com/CourageAllien/revshare/internal/leadmagnet"
	"github.com/CourageAllien/revshare/internal/logger"
	"github.com/CourageAllien/revshare/internal/scheduler"
	"github.com/CourageAllien/revshare/internal/store"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Store      store.Bookings       // booking persistence
	Bookings   *booking.Service     // booking intake
	Reminders  *scheduler.Reminders // reminder evaluation and delivery
	LeadMagnet *leadmagnet.Service  // guide generation and delivery

	CronSecret      string // bearer token for the reminder trigger (empty = open)
	TrustProxy      bool   // true if running behind a trusted reverse proxy
	RateLimitBurst  int    // bucket size for public POST endpoints
	RateLimitPerMin int    // refill rate for public POST endpoints
}
