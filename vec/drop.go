package vec

// Dropper is implemented by elements that need cleanup when a Vec
// destroys them. Drop is called at most once per value.
type Dropper interface {
	Drop()
}

// SetDropFunc sets the cleanup that runs when v destroys an element.
// f takes precedence over Dropper. Passing nil restores the default.
func (v *Vec[T]) SetDropFunc(f func(T)) {
	v.checkBorrow()
	v.drop = f
}

func (v *Vec[T]) dropValue(x T) {
	if v.drop != nil {
		v.drop(x)
		return
	}
	if d, ok := any(x).(Dropper); ok {
		d.Drop()
	}
}

// dropAt vacates slot i before cleaning up its value, so a panicking
// cleanup can never leave the slot occupied.
func (v *Vec[T]) dropAt(i int) {
	v.dropValue(v.vacate(i))
}

// dropAll drops every slot next hands out until next reports false.
// If a cleanup panics, the remaining slots are still dropped and the
// panic resumes afterwards.
func (v *Vec[T]) dropAll(next func() (int, bool)) {
	defer func() {
		if r := recover(); r != nil {
			v.dropAll(next)
			panic(r)
		}
	}()

	for i, ok := next(); ok; i, ok = next() {
		v.dropAt(i)
	}
}
