package db_models

type Notification struct {
	BaseModel
	Title   string `json:"title"`
	Message string `json:"message"`
	IsRead  bool   `json:"isRead"`
	UserID  int64  `json:"userId"`
}
