package model

// Video is an entry of the landing-page player playlist.
type Video struct {
	ID    int64  `json:"id" db:"id"`
	Src   string `json:"src" db:"src"`
	Title string `json:"title" db:"title"`
}
