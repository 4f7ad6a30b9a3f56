package rpn

// Level is a difficulty tier gating the operator set.
type Level string

const (
	LevelBasic Level = "B" // + - * /
	Level1     Level = "1" // adds ^
	Level2     Level = "2" // adds sqrt, root
	Level3     Level = "3" // adds !
)

// Valid reports whether l is a recognized tier.
func (l Level) Valid() bool {
	switch l {
	case LevelBasic, Level1, Level2, Level3:
		return true
	}
	return false
}

// rank orders tiers from basic upward.
func (l Level) rank() int {
	switch l {
	case LevelBasic:
		return 0
	case Level1:
		return 1
	case Level2:
		return 2
	case Level3:
		return 3
	}
	return -1
}

// AtLeast reports whether l is the given tier or higher.
func (l Level) AtLeast(min Level) bool { return l.rank() >= min.rank() }

// Below returns the next tier down, used by the summation extension to
// cap its recursive sub-search. LevelBasic has no lower tier.
func (l Level) Below() Level {
	switch l {
	case Level3:
		return Level2
	case Level2:
		return Level1
	case Level1:
		return LevelBasic
	}
	return LevelBasic
}

// BinaryOps returns the binary operator set available at l.
func (l Level) BinaryOps() []Op {
	ops := []Op{OpAdd, OpSub, OpMul, OpDiv}
	if l.AtLeast(Level1) {
		ops = append(ops, OpPow)
	}
	if l.AtLeast(Level2) {
		ops = append(ops, OpRoot)
	}
	return ops
}

// AllowsUnary reports whether sqrt/! pre-reduction applies at l.
func (l Level) AllowsUnary() bool { return l.AtLeast(Level2) }

// AllowsSigma reports whether the summation extension applies at l.
func (l Level) AllowsSigma() bool { return l == Level3 }
