package models

import "fmt"

// Order rows are schema-light: the checkout flow stores whatever fields it
// collected, so orders travel as raw JSON objects. Known columns get typed
// accessors.
type Order map[string]any

func (o Order) ID() string {
	if v, ok := o["order_id"]; ok && v != nil {
		return fmt.Sprint(v)
	}
	if v, ok := o["id"]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return ""
}

func (o Order) Status() string {
	if v, ok := o["order_status"].(string); ok {
		return v
	}
	return ""
}
