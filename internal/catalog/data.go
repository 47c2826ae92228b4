package catalog

import "spicysmp_store/internal/models"

// Built-in store data. A YAML catalog file (see Load) replaces all of it;
// nothing merges the two.

var defaultRanks = []models.Rank{
	{
		ID:          "pro",
		Name:        "PRO RANK",
		Description: "Start your journey with the PRO status. Includes essential commands and exclusive gear.",
		KitName:     "PRO Kit",
		Tier:        "pro",
		Durations:   []models.Duration{{Days: 30, Price: 30}, {Days: 60, Price: 55}},
		Perks:       []string{"Diamond Armor Kit", "2 Homes", "/nick Command", "Colored Chat", "Access to /hat", "Priority Support"},
		KitItems:    []string{"Diamond Helmet (Protection III)", "Diamond Chestplate (Protection III)", "Diamond Leggings (Protection III)", "Diamond Boots (Protection III)", "Diamond Sword (Sharpness III)", "32x Golden Apples"},
		BuyLink:     "https://spicysmp.dpdns.org/pro.html",
	},
	{
		ID:          "elite",
		Name:        "ELITE RANK",
		Description: "Step up your game with colored chat, more homes, and premium perks.",
		KitName:     "ELITE Kit",
		Tier:        "elite",
		Durations:   []models.Duration{{Days: 30, Price: 55}, {Days: 60, Price: 100}},
		Perks:       []string{"Full Diamond Kit", "5 Homes", "/fly in Lobby", "Priority Queue", "Colored Chat", "Custom Nickname"},
		KitItems:    []string{"Diamond Helmet (Protection IV)", "Diamond Chestplate (Protection IV)", "Diamond Leggings (Protection IV)", "Diamond Boots (Protection IV)", "Diamond Sword (Sharpness IV)", "64x Golden Apples", "Ender Pearls x16"},
		CustomName:  true,
		BuyLink:     "https://spicysmp.dpdns.org/elite.html",
	},
	{
		ID:          "legend",
		Name:        "LEGEND RANK",
		Description: "Become a legend on the server with exclusive trails and priority access.",
		KitName:     "LEGEND Kit",
		Tier:        "legend",
		Durations:   []models.Duration{{Days: 30, Price: 80}, {Days: 60, Price: 150}},
		Perks:       []string{"Netherite Armor Kit", "10 Homes", "Custom Title", "Exclusive Trails", "Priority Queue", "/enderchest"},
		KitItems:    []string{"Netherite Helmet (Protection IV)", "Netherite Chestplate (Protection IV)", "Netherite Leggings (Protection IV)", "Netherite Boots (Protection IV)", "Netherite Sword (Sharpness V)", "Notch Apple x8"},
		BuyLink:     "https://spicysmp.dpdns.org/legend.html",
	},
	{
		ID:          "deadliest",
		Name:        "DEADLIEST RANK",
		Description: "Unleash your true combat potential with special perks and kill effects.",
		KitName:     "DEADLIEST Kit",
		Tier:        "deadliest",
		Durations:   []models.Duration{{Days: 30, Price: 150}, {Days: 60, Price: 280}},
		Perks:       []string{"Combat Perks", "15 Homes", "Exclusive Particles", "Kill Effects", "/feed Command", "Special Trails"},
		KitItems:    []string{"Netherite Helmet (Protection V)", "Netherite Chestplate (Protection V)", "Netherite Leggings (Protection V)", "Netherite Boots (Protection V)", "Netherite Sword (Sharpness VII)", "Notch Apple x16", "Totem x2"},
		BuyLink:     "https://spicysmp.dpdns.org/deadliest.html",
	},
	{
		ID:          "immortal",
		Name:        "IMMORTAL RANK",
		Description: "Unlock the power of eternity with flight and legendary abilities.",
		KitName:     "IMMORTAL Kit",
		Tier:        "immortal",
		Durations:   []models.Duration{{Days: 30, Price: 110}, {Days: 60, Price: 200}},
		Perks:       []string{"Flight in Lobby", "Unique Titles", "20 Homes", "Legendary Kit", "/heal Command", "Exclusive Cosmetics"},
		KitItems:    []string{"Netherite Helmet (Protection V, Mending)", "Netherite Chestplate (Protection V, Mending)", "Netherite Leggings (Protection V, Mending)", "Netherite Boots (Protection V, Mending)", "Netherite Sword (Sharpness VII, Mending)", "Notch Apple x24", "Totem x4"},
		CustomName:  true,
		BuyLink:     "https://spicysmp.dpdns.org/immortal.html",
	},
	{
		ID:          "supreme",
		Name:        "SUPREME RANK",
		Description: "The ultimate status. Dominate with maximum claim blocks and all commands.",
		KitName:     "SUPREME Kit",
		Tier:        "supreme",
		Durations:   []models.Duration{{Days: 30, Price: 200}, {Days: 60, Price: 380}},
		Perks:       []string{"Max Claim Blocks", "30 Homes", "All Commands", "Supreme Kit", "VIP Support", "Beta Access"},
		KitItems:    []string{"Netherite Helmet (All Max Enchants)", "Netherite Chestplate (All Max Enchants)", "Netherite Leggings (All Max Enchants)", "Netherite Boots (All Max Enchants)", "Netherite Sword (All Max Enchants)", "Notch Apple x32", "Totem x8", "Mace (Exclusive)"},
		BuyLink:     "https://spicysmp.dpdns.org/supreme.html",
	},
}

var defaultKeys = []models.Key{
	{
		ID:          "vote-key",
		Name:        "Vote Key",
		Description: "Get this key for FREE by voting for our server! Contains diamond gear and golden apples.",
		Price:       0,
		IsFree:      true,
		Rewards:     []string{"Diamond Kit (II-III)", "Spawner (Random)", "Golden Apples x8", "Random Enchant Books"},
		Section:     models.SectionSMP,
		BuyLink:     "https://spicysmp.dpdns.org/vote_key.html",
	},
	{
		ID:          "party-key",
		Name:        "Party Key",
		Description: "Share the luck! This key gives random keys to other players on the server.",
		Price:       5,
		Rewards:     []string{"Random Keys for Players", "Party Rewards", "Bonus XP", "Special Effects"},
		Section:     models.SectionSMP,
		BuyLink:     "https://spicysmp.dpdns.org/party_key.html",
	},
	{
		ID:          "apple-key",
		Name:        "Apple Key",
		Description: "Premium key with enhanced luck and better drop rates.",
		Price:       10,
		Rewards:     []string{"Full Netherite Kit", "Enchantment (IV)", "Spawner", "Golden Apples x24", "More Luck Bonus"},
		Section:     models.SectionSMP,
		BuyLink:     "https://spicysmp.dpdns.org/APPLE_key.html",
	},
	{
		ID:          "banana-key",
		Name:        "Banana Key",
		Description: "Full Netherite kit with high-level enchantments and rare items.",
		Price:       15,
		Rewards:     []string{"Full Netherite Kit", "Enchantment (V)", "Spawner", "Golden Apples x16"},
		Section:     models.SectionSMP,
		BuyLink:     "https://spicysmp.dpdns.org/banana_key.html",
	},
	{
		ID:          "blood-key",
		Name:        "Blood Key",
		Description: "Powerful key with top-tier enchantments and Notch Apples.",
		Price:       20,
		Rewards:     []string{"Full Netherite Kit", "Enchantment (VII)", "Spawner", "Golden Apples x32", "Notch Apple x4"},
		Section:     models.SectionSMP,
		BuyLink:     "https://spicysmp.dpdns.org/BLOOD_key.html",
	},
	{
		ID:          "blue-key",
		Name:        "Blue Key",
		Description: "High-value key with extreme enchantments and rare rewards.",
		Price:       25,
		Rewards:     []string{"Full Netherite Kit", "Enchantment (X)", "Spawner", "Golden Apples x48", "Notch Apple x8"},
		Section:     models.SectionSMP,
		BuyLink:     "https://spicysmp.dpdns.org/BLUE_key.html",
	},
	{
		ID:          "purple-key",
		Name:        "Purple Key",
		Description: "Ultimate key with maximum enchantments and exclusive Mace weapon.",
		Price:       30,
		Rewards:     []string{"Full Netherite Kit", "Enchantment (XV)", "Spawner", "Golden Apples x64", "Mace Weapon"},
		Section:     models.SectionSMP,
		BuyLink:     "https://spicysmp.dpdns.org/purple_key.html",
	},
	{
		ID:          "core-key",
		Name:        "Core Key",
		Description: "Essential Lifesteal gear with balanced enchantments and hearts.",
		Price:       10,
		Rewards:     []string{"Lifesteal Gear", "Balanced Enchantments", "Extra Hearts"},
		Section:     models.SectionLifesteal,
		BuyLink:     "https://spicysmp.dpdns.org/core_key.html",
	},
	{
		ID:          "flux-key",
		Name:        "Flux Key",
		Description: "Advanced Lifesteal kit with powerful enchantments and extra hearts.",
		Price:       20,
		Rewards:     []string{"Advanced Lifesteal Kit", "Powerful Enchantments", "Extra Hearts"},
		Section:     models.SectionLifesteal,
		BuyLink:     "https://spicysmp.dpdns.org/flux_key.html",
	},
	{
		ID:          "aura-key",
		Name:        "Aura Key",
		Description: "Ultimate Lifesteal crate with max enchantments, hearts and rare items.",
		Price:       30,
		Rewards:     []string{"Ultimate Lifesteal Crate", "Max Enchantments", "Extra Hearts", "Rare Items"},
		Section:     models.SectionLifesteal,
		BuyLink:     "https://spicysmp.dpdns.org/aura_key.html",
	},
}

var defaultCurrencies = []models.Currency{
	{
		ID:          "coins",
		Name:        "In-Game Coins",
		Description: "Buy coins to use in the server economy. Trade, purchase items from shops, and more!",
		Rate:        2,
		Unit:        "Coin",
		MinQuantity: 100,
	},
	{
		ID:          "claimblocks",
		Name:        "Claim Blocks",
		Description: "Protect your builds! Claim blocks let you expand your protected territory on the server.",
		Rate:        1,
		Unit:        "Claim Block",
		MinQuantity: 100,
	},
}

// Default returns the built-in store catalog.
func Default() (*Catalog, error) {
	return New(defaultRanks, defaultKeys, defaultCurrencies)
}
