package entity

type Yacht struct {
	YachtID     string `json:"yacht_id" db:"yacht_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Location    string `json:"location" db:"location"`
	Rooms       []Room `json:"rooms"`
}

type Room struct {
	RoomID    string `json:"room_id" db:"room_id"`
	YachtID   string `json:"-" db:"yacht_id"`
	Name      string `json:"name" db:"name"`
	Area      int    `json:"area" db:"area"`
	MaxGuests int    `json:"max_guests" db:"max_guests"`
	Price     int64  `json:"price" db:"price"`
}
