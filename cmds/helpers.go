package cmds

// Var defines name to set the value and name+"." to reset it.
func Var[T any](name string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}))
	return value
}

// Switch defines name to turn on and "!"+name to turn off.
func Switch(name string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}))
	Define("!"+name, Func(func() {
		*value = false
	}))
	return value
}

func Collect[T any](name string) *[]T {
	value := new([]T)
	Define(name, Func(func(v T) {
		*value = append(*value, v)
	}))
	return value
}
