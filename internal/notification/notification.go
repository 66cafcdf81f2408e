// Package notification sends desktop notifications through beeep, which
// picks the platform mechanism (notify-send/D-Bus, AppleScript, WinRT).
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/zhubert/studdy/internal/errors"
	"github.com/zhubert/studdy/internal/logger"
)

// AppName is the title used for studdy's notifications.
const AppName = "Studdy"

type notifierFunc func(title, message string, icon any) error

var notifier notifierFunc = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(f func(title, message string, icon any) error) {
	notifier = f
}

// ResetNotifier restores beeep as the delivery function.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Debug("Notification: title=%q message=%q", title, message)
	if err := notifier(title, message, ""); err != nil {
		logger.Warn("Notification: failed to send: %v", err)
		return errors.E(errors.Op("notification.Send"), errors.KindNotify, err)
	}
	return nil
}

// TimesUp announces the end of a work session.
func TimesUp(breakMinutes int) error {
	return Send(AppName, TimesUpMessage(breakMinutes))
}

// TimesUpMessage is the text shown when a work session ends.
func TimesUpMessage(breakMinutes int) string {
	if breakMinutes <= 0 {
		return "Time's up! Take a break!"
	}
	return fmt.Sprintf("Time's up! Take a %d minute break!", breakMinutes)
}
