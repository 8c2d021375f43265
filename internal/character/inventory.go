package character

// Inventory counts the nice presents a character collected.
type Inventory struct {
	presents uint
}

// AddPresent adds one present and returns the new count.
func (i *Inventory) AddPresent() uint {
	i.presents++
	return i.presents
}

// Presents returns the number of collected presents.
func (i Inventory) Presents() uint {
	return i.presents
}
