package user

type User struct {
	ID       int    `json:"userId"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	CartID   int    `json:"cartId,omitempty"`
}
