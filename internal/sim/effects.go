package sim

// effectFunc applies the consequences of eating f. The snake has already
// moved its head onto f.At and kept its tail, so every effect starts from a
// net growth of one cell.
type effectFunc func(r Rules, st *State, f Food, ev *Event)

var effects = map[FoodKind]effectFunc{
	FoodNormal:    eatNormal,
	FoodBonus:     eatBonus,
	FoodSpeedDown: eatSpeedDown,
	FoodShrink:    eatShrink,
	FoodTeleport:  eatTeleport,
}

// resolve dispatches on the food kind. Unknown kinds behave like normal food.
func resolve(r Rules, st *State, f Food) Event {
	ev := Event{Kind: f.Kind, At: f.At}
	before := st.Score
	apply, ok := effects[f.Kind]
	if !ok {
		apply = eatNormal
	}
	apply(r, st, f, &ev)
	ev.Points = st.Score - before
	return ev
}

func eatNormal(r Rules, st *State, _ Food, _ *Event) {
	st.Stats.Apples++
	st.Score += r.NormalScore + max(0, st.Combo-1)*r.ComboStep
}

func eatBonus(r Rules, st *State, _ Food, _ *Event) {
	st.Stats.Golden++
	st.Score += r.BonusScore
	st.Snake.grow(r.BonusGrowth - 1)
}

func eatSpeedDown(r Rules, st *State, _ Food, _ *Event) {
	st.Stats.SlowMo++
	st.Speed = max(r.MinSpeed, st.Speed-r.SpeedDownStep)
	st.Score += r.SpeedDownScore
}

func eatShrink(r Rules, st *State, _ Food, ev *Event) {
	st.Stats.Shrink++
	ev.Trimmed = st.Snake.cut(r.ShrinkCut, r.MinLength)
	st.Score += r.ShrinkScore
}

func eatTeleport(r Rules, st *State, f Food, ev *Event) {
	st.Stats.Portal++
	if partner, ok := st.Food.TakePartner(f); ok {
		st.Snake.relocateHead(partner.At)
		ev.Teleported = true
		ev.To = partner.At
	}
	st.Score += r.TeleportScore
}
