// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type ProductSnapshot struct {
	Id           int64                     `json:"id"`
	Name         string                    `json:"name"`
	Price        float64                   `json:"price"`
	Image        string                    `json:"image,omitempty"`
	ExpiryDate   string                    `json:"expiry_date"`
	GreenScore   int64                     `json:"green_score"`
	Alternatives map[string]map[string]any `json:"alternatives"`
}

type CartLine struct {
	CartItemId int64           `json:"cart_item_id"`
	Product    ProductSnapshot `json:"product"`
	Quantity   int64           `json:"quantity"`
}

type CartItemView struct {
	Id        int64  `json:"id"`
	ProductId int64  `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	AddedAt   string `json:"added_at"`
}

type GetCartResponse struct {
	StatusCode int        `json:"code"`
	StatusMsg  string     `json:"msg"`
	Total      int64      `json:"total"`
	Items      []CartLine `json:"items"`
}

type AddCartItemRequest struct {
	ProductId int64 `json:"product_id"`
	Quantity  int64 `json:"quantity,default=1"`
}

type AddCartItemResponse struct {
	StatusCode int          `json:"code"`
	StatusMsg  string       `json:"msg"`
	Item       CartItemView `json:"item"`
}

type DeleteCartItemRequest struct {
	ItemId int64 `path:"item_id"`
}

type DeleteCartItemResponse struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
	Status     string `json:"status"`
	ItemId     int64  `json:"item_id"`
}

type UpdateCartItemRequest struct {
	Id       int64 `json:"id"`
	Quantity int64 `json:"quantity"`
}

type UpdateCartItemResponse struct {
	StatusCode int          `json:"code"`
	StatusMsg  string       `json:"msg"`
	Item       CartItemView `json:"item"`
}

type SwapCartItemRequest struct {
	CartItemId  int64  `json:"cart_item_id"`
	Alternative string `json:"alternative"`
}

type SwapCartItemResponse struct {
	StatusCode int             `json:"code"`
	StatusMsg  string          `json:"msg"`
	CartItemId int64           `json:"cart_item_id"`
	Quantity   int64           `json:"quantity"`
	Product    ProductSnapshot `json:"product"`
}

type SeedProductsResponse struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
	Seeded     int    `json:"seeded"`
}

type AgentRequest struct {
	Message string `json:"message"`
}

type AgentState struct {
	UserMessage  string `json:"user_message"`
	Intent       string `json:"intent,omitempty"`
	Product      string `json:"product,omitempty"`
	ToolOutput   string `json:"tool_output,omitempty"`
	FinalMessage string `json:"final_message"`
}

type AgentResponse struct {
	StatusCode int        `json:"code"`
	StatusMsg  string     `json:"msg"`
	Response   AgentState `json:"response"`
}

type AddDishRequest struct {
	Dish string `json:"dish"`
}

type AddDishResponse struct {
	StatusCode  int      `json:"code"`
	StatusMsg   string   `json:"msg"`
	Ingredients []string `json:"ingredients"`
	Outcomes    []string `json:"outcomes"`
}
