package model

type LoginDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// TokenInfo - данные оператора, которые хранятся в bearer токене
type TokenInfo struct {
	Login string `json:"login"`
}

type FulfillOrderDTO struct {
	OrderID string `json:"order_id"`
}

// AjaxResponse - конверт ответа для кнопки fulfill в админке
type AjaxResponse struct {
	Success bool   `json:"success"`
	Data    string `json:"data"`
}

type CreateOrderResponse struct {
	ID int64 `json:"id"`
}
