package model

// Permissions is the capability set granted on a mount. The server always
// sends the full set; a value is replaced atomically, never patched.
type Permissions struct {
	Read           bool `json:"READ"`
	Write          bool `json:"WRITE"`
	Owner          bool `json:"OWNER"`
	Mount          bool `json:"MOUNT"`
	CreateLink     bool `json:"CREATE_LINK"`
	CreateReceiver bool `json:"CREATE_RECEIVER"`
	Comment        bool `json:"COMMENT"`
}

type User struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	Permissions Permissions
}

func (u User) Name() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
