package areas

// All returns the builder of every level in level index order.
func All() []Builder {
	return []Builder{
		geyserRock{},
		sandoverVillage{},
		sentinelBeach{},
		forbiddenJungle{},
		mistyIsland{},
		fireCanyon{},
		rockVillage{},
		precursorBasin{},
		lostPrecursorCity{},
		boggySwamp{},
		mountainPass{},
		volcanicCrater{},
		spiderCave{},
		snowyMountain{},
		lavaTube{},
		citadel{},
	}
}

// UpTo returns the builders of hubs 1..hub.
func UpTo(hub int) []Builder {
	var out []Builder
	for _, b := range All() {
		if b.Hub() <= hub {
			out = append(out, b)
		}
	}
	return out
}
