package domain

// ProfilesKey is the root key of the profile collection inside the store
// document. The collection is an ordered sequence of records-or-null; deleted
// slots become null so indexes stay stable for other holders.
const ProfilesKey = "userprofiles"

// Coin is the cosmetic avatar-coin metadata attached to a profile. It is
// copied verbatim from the remote service and never interpreted locally.
type Coin struct {
	Color   string `json:"color"`
	Title   string `json:"title"`
	Desktop string `json:"desktop"`
}

// ProfileRecord is the durable cached representation of one remote user
// identity, plus the local authentication state bound to it.
type ProfileRecord struct {
	ID       int64  `json:"id"`       // stable remote identity key
	Username string `json:"username"` // remote-unique handle
	Token    string `json:"token"`    // opaque sign-in token, empty while signed out
	SignedIn bool   `json:"signedin"`
	Updated  int64  `json:"updated"` // epoch millis of last successful refresh, -1 for never

	// Remote-sourced presentation fields, refreshed from the service.
	DisplayName string `json:"displayname"`
	URL         string `json:"url"`
	Avatar      string `json:"avatar"`      // remote avatar URL
	LocalAvatar string `json:"localAvatar"` // relative path of the cached avatar image
	Coin        Coin   `json:"coin"`
}

// PlaceholderRecord returns the disabled record used when a cache wrapper is
// constructed over absent or malformed stored data.
func PlaceholderRecord() ProfileRecord {
	return ProfileRecord{Updated: -1}
}

// RemoteProfile is the profile-lookup response from the remote service.
type RemoteProfile struct {
	Success  bool   `json:"success"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Avatar   string `json:"avatar"`
	Coin     Coin   `json:"coin"`
	Message  string `json:"message,omitempty"`
}

// AuthResult is the outcome of an authentication attempt. A remote-reported
// failure is passed through with Success=false and the service's message.
type AuthResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// WhoAmI is the identity bound to a bearer token, as reported by the remote
// service.
type WhoAmI struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}
