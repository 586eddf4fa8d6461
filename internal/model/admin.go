package model

type AdminCredential struct {
	UserID   string `json:"userid"`
	Password string `json:"password"`
}
