package models

// Address — почтовый адрес пользователя.
type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Hair — цвет и тип волос.
type Hair struct {
	Color string `json:"color"`
	Type  string `json:"type"`
}

// User — профиль пользователя.
//
// Форма повторяет апстрим: физические атрибуты лежат плоскими полями,
// вложены только hair и address. После загрузки не мутируется.
type User struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Age        int     `json:"age"`
	Height     float64 `json:"height"`
	Weight     float64 `json:"weight"`
	EyeColor   string  `json:"eyeColor"`
	Hair       Hair    `json:"hair"`
	BloodGroup string  `json:"bloodGroup"`
	Address    Address `json:"address"`
	Image      string  `json:"image"`
}
