// Package setting holds system-wide key/value configuration editable at
// runtime through the API.
package setting

// KeyEmailNotifications gates outbound ticket email. An absent key means
// notifications are enabled.
const KeyEmailNotifications = "emailNotifications"

type Setting struct {
	Key   string
	Value string
}

// IsTruthy interprets a stored setting value as a boolean flag.
func IsTruthy(value string) bool {
	return value == "1" || value == "true"
}

// EmailNotificationsEnabled applies the default-on rule for the
// emailNotifications setting.
func EmailNotificationsEnabled(value string, found bool) bool {
	if !found {
		return true
	}
	return IsTruthy(value)
}
