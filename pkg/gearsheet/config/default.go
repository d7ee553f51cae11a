package config

// Default returns the built-in configuration matching Silent Gear's
// material export columns. It is used when no config file is supplied.
func Default() *Config {
	return &Config{
		General: Sheet{
			Headers: []string{
				"Name", "ID", "Type", "Tier", "Rarity",
				"Durability", "Armor Durability", "Enchantability",
				"Harvest Level", "Harvest Speed",
				"Melee Damage", "Magic Damage", "Ranged Damage", "Attack Speed",
				"Armor", "Armor Toughness", "Knockback Resistance", "Magic Armor",
				"Traits",
			},
			Colors: map[string]string{
				"Name":                 "FFD966",
				"Tier":                 "D9D9D9",
				"Durability":           "C6EFCE",
				"Armor Durability":     "C6EFCE",
				"Enchantability":       "D9D2E9",
				"Harvest Level":        "BDD7EE",
				"Harvest Speed":        "BDD7EE",
				"Melee Damage":         "F8CBAD",
				"Magic Damage":         "F8CBAD",
				"Ranged Damage":        "F8CBAD",
				"Attack Speed":         "F8CBAD",
				"Armor":                "C9DAF8",
				"Armor Toughness":      "C9DAF8",
				"Knockback Resistance": "C9DAF8",
				"Magic Armor":          "C9DAF8",
			},
		},
		Tools: Sheet{
			Headers: []string{
				"Name", "Tier", "Durability", "Enchantability",
				"Harvest Level", "Harvest Speed", "Traits",
			},
		},
		Weapons: Sheet{
			Headers: []string{
				"Name", "Tier", "Durability", "Enchantability",
				"Melee Damage", "Magic Damage", "Ranged Damage", "Attack Speed",
				"Traits",
			},
		},
		Armor: Sheet{
			Headers: []string{
				"Name", "Tier", "Armor Durability", "Enchantability",
				"Armor", "Armor Toughness", "Knockback Resistance", "Magic Armor",
				"Traits",
			},
		},
	}
}
