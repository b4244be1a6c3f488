// Package screen holds the per-screen workflow state of the warehouse
// front-end. Each workflow is created per screen instance, calls the service
// layer, and reports outcomes through a Notifier and a Navigator instead of
// returning errors to its caller.
package screen

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Navigation targets.
const (
	PathWarehouse = "/warehouse"
	PathProducts  = "/warehouse/products"
)

// Notifier shows transient notices to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator moves the user to another screen.
type Navigator interface {
	Navigate(path string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

type nopNavigator struct{}

func (nopNavigator) Navigate(string) {}

func withDefaults(n Notifier, nav Navigator, log logrus.FieldLogger) (Notifier, Navigator, logrus.FieldLogger) {
	if n == nil {
		n = nopNotifier{}
	}
	if nav == nil {
		nav = nopNavigator{}
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return n, nav, log
}
