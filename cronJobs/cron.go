package cronJobs

import (
	"context"

	"github.com/MaxouZouzouAlou/RestoNowFront/backend"
	"github.com/sirupsen/logrus"
)

// ProbeBackend logs whether the listing backend is reachable. Diagnostics
// only; it never touches pipeline state.
func ProbeBackend(client *backend.Client) {
	if err := client.Ping(context.Background()); err != nil {
		logrus.Errorf("backend probe failed: %+v", err)
		return
	}
	logrus.Debugln("backend reachable")
}
