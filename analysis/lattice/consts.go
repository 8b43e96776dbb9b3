package lattice

// Sign elements are immutable singletons. Passing shallow copies is safe.

type consts struct{}

var _consts = consts{}

// Consts is a factory for commonly used constant elements.
func Consts() consts {
	return _consts
}

func (consts) Bot() Sign {
	return signBot
}

func (consts) Top() Sign {
	return signTop
}

func (consts) Negative() Sign {
	return signNegative
}

func (consts) Zero() Sign {
	return signZero
}

func (consts) Positive() Sign {
	return signPositive
}

// BotMemory returns the empty memory, the ⊥ element of the memory lattice.
func (consts) BotMemory() Memory {
	return memBot
}
