package component

// Boss stores the scripted demo boss's tuning.
type Boss struct {
	DisplayName string
	// DialogueFrames is how long the defeat dialogue runs before the boss
	// reports itself defeated.
	DialogueFrames int
}

// BossRuntime stores runtime-only state for the boss script.
type BossRuntime struct {
	Dead     bool
	Reported bool
}

var BossComponent = NewComponent[Boss]()
var BossRuntimeComponent = NewComponent[BossRuntime]()

type Health struct {
	Initial int
	Current int
}

var HealthComponent = NewComponent[Health]()
