package config

var DefaultConfig = Config{
	Depth:    3,
	LogLevel: "info",
	SelfPlay: SelfPlayConfig{
		Games:        8,
		Workers:      4,
		Depth:        2,
		OpeningPlies: 4,
		MaxPlies:     300,
	},
}
