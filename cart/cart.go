// Package cart is the shopping cart reducer. A Cart is a plain value owned
// by the browser session; every operation returns nothing and mutates the
// receiver, and the totals are recomputed from the items on each call.
package cart

type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

type Cart struct {
	Items []Item `json:"items"`
}

func (c *Cart) index(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// AddItem increments the quantity of an item already in the cart, or
// appends it with quantity 1.
func (c *Cart) AddItem(item Item) {
	if i := c.index(item.ID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// UpdateQuantity sets the quantity of id. A quantity of zero or less
// removes the item.
func (c *Cart) UpdateQuantity(id string, qty int) {
	if qty <= 0 {
		c.RemoveItem(id)
		return
	}
	if i := c.index(id); i >= 0 {
		c.Items[i].Quantity = qty
	}
}

func (c *Cart) RemoveItem(id string) {
	if i := c.index(id); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

func (c *Cart) Clear() { c.Items = nil }

func (c *Cart) IsEmpty() bool { return len(c.Items) == 0 }

func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Summary is the JSON shape returned by the cart API.
type Summary struct {
	Items      []Item  `json:"items"`
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

func (c *Cart) Summary() Summary {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return Summary{Items: items, TotalItems: c.TotalItems(), TotalPrice: c.TotalPrice()}
}
