package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed int // ticks per frame
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		WalkUp:    {First: 0, Last: 3, Step: 1, Speed: 6},
		WalkDown:  {First: 0, Last: 3, Step: 1, Speed: 6},
		WalkLeft:  {First: 0, Last: 3, Step: 1, Speed: 6},
		WalkRight: {First: 0, Last: 3, Step: 1, Speed: 6},
	},
}
