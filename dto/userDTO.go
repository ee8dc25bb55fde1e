package dto

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}
