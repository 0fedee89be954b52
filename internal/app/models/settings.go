package models

// Settings is the single-record preferences document. Fields are pointers so
// a deleted preference disappears from the persisted record instead of
// reverting to a zero value.
type Settings struct {
	DarkMode            *bool   `json:"darkMode,omitempty"`
	NotifyEmail         *bool   `json:"notifyEmail,omitempty"`
	NotifyPush          *bool   `json:"notifyPush,omitempty"`
	Language            *string `json:"language,omitempty"`
	PasswordLastChanged *string `json:"passwordLastChanged,omitempty"`
}

// Settings field names accepted by Set and Clear.
const (
	SettingDarkMode            = "darkMode"
	SettingNotifyEmail         = "notifyEmail"
	SettingNotifyPush          = "notifyPush"
	SettingLanguage            = "language"
	SettingPasswordLastChanged = "passwordLastChanged"
)

// Set assigns a field by name. It returns false when the field name is
// unknown or the value has the wrong type.
func (s *Settings) Set(field string, value any) bool {
	switch field {
	case SettingDarkMode, SettingNotifyEmail, SettingNotifyPush:
		b, ok := value.(bool)
		if !ok {
			return false
		}
		switch field {
		case SettingDarkMode:
			s.DarkMode = &b
		case SettingNotifyEmail:
			s.NotifyEmail = &b
		case SettingNotifyPush:
			s.NotifyPush = &b
		}
		return true
	case SettingLanguage, SettingPasswordLastChanged:
		str, ok := value.(string)
		if !ok {
			return false
		}
		if field == SettingLanguage {
			s.Language = &str
		} else {
			s.PasswordLastChanged = &str
		}
		return true
	}
	return false
}

// Clear removes a field from the record. It returns false when the field
// name is unknown.
func (s *Settings) Clear(field string) bool {
	switch field {
	case SettingDarkMode:
		s.DarkMode = nil
	case SettingNotifyEmail:
		s.NotifyEmail = nil
	case SettingNotifyPush:
		s.NotifyPush = nil
	case SettingLanguage:
		s.Language = nil
	case SettingPasswordLastChanged:
		s.PasswordLastChanged = nil
	default:
		return false
	}
	return true
}
