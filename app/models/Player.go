package models

type Player struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type LoginDto struct {
	Name string `json:"name"`
}

type TransferDto struct {
	To string `json:"to"`
}
