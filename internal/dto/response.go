package dto

// BookInfo is a registry row as shown to clients.
type BookInfo struct {
	ID       uint64 `json:"id"`
	Filename string `json:"filename"`
}

// MyLibraryResponse lists the caller's own books plus the other
// registered usernames for navigation.
type MyLibraryResponse struct {
	Username string     `json:"username"`
	Books    []BookInfo `json:"books"`
	Users    []string   `json:"users"`
}

// UserLibraryResponse lists one user's books.
type UserLibraryResponse struct {
	Username string     `json:"username"`
	Books    []BookInfo `json:"books"`
}
