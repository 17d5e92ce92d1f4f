package basic

// UserMeta 从jwt中解出的调用者身份
type UserMeta struct {
	UserId string `json:"userId" mapstructure:"userId"`
	Role   string `json:"role" mapstructure:"role"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

func (m *UserMeta) GetRole() string {
	if m == nil {
		return ""
	}
	return m.Role
}
