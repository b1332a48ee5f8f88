package data

// MaxReactionLevel is the highest level covered by LevelMultiplierTable.
const MaxReactionLevel = 100

// LevelMultiplierTable holds the reaction level multiplier at every tenth
// level. Index i covers level i*10; index 0 stands for level 1.
// Levels in between are linearly interpolated.
var LevelMultiplierTable = [11]float64{
	17.165606, // 1
	34.143343, // 10
	80.584775, // 20
	136.29291, // 30
	207.38209, // 40
	323.6016,  // 50
	492.88465, // 60
	765.64478, // 70
	1077.4436, // 80
	1446.8535, // 90
	1561.468,  // 100
}

// LevelMultiplier returns the reaction level multiplier for level.
// Levels are clamped to [1, MaxReactionLevel].
func LevelMultiplier(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level >= MaxReactionLevel {
		return LevelMultiplierTable[len(LevelMultiplierTable)-1]
	}
	if level < 10 {
		// Table index 0 is level 1, index 1 is level 10.
		lo, hi := LevelMultiplierTable[0], LevelMultiplierTable[1]
		return lo + (hi-lo)*float64(level-1)/9
	}
	i := level / 10
	lo, hi := LevelMultiplierTable[i], LevelMultiplierTable[i+1]
	return lo + (hi-lo)*float64(level%10)/10
}
