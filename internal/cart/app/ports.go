package app

// CountListener receives the cart size after every accepted entry.
type CountListener func(count int)
