package entities

// DefaultDestinations is the built-in catalog used when no catalog file is configured.
var DefaultDestinations = []Destination{
	{
		Key:         "london",
		DisplayName: "London",
		Price:       "$799",
		Description: "A vibrant European capital with rich history and culture",
	},
	{
		Key:         "paris",
		DisplayName: "Paris",
		Price:       "$899",
		Description: "The City of Light, famous for art, fashion, and cuisine",
	},
	{
		Key:         "tokyo",
		DisplayName: "Tokyo",
		Price:       "$1400",
		Description: "A modern metropolis blending traditional and contemporary Japanese culture",
	},
	{
		Key:         "berlin",
		DisplayName: "Berlin",
		Price:       "$499",
		Description: "Germany's capital with fascinating history and vibrant arts scene",
	},
	{
		Key:         "hochiminh",
		DisplayName: "Ho Chi Minh City",
		Price:       "$1500",
		Description: "Vietnam's bustling economic hub with rich cultural heritage",
	},
}

// DefaultAliases are the alias registrations for DefaultDestinations.
// Keys are registered as their own aliases by the catalog and are not repeated here.
var DefaultAliases = []AliasEntry{
	{Alias: "londres", Key: "london"},
	{Alias: "londra", Key: "london"},
	{Alias: "ldn", Key: "london"},
	{Alias: "paree", Key: "paris"},
	{Alias: "parigi", Key: "paris"},
	{Alias: "tokio", Key: "tokyo"},
	{Alias: "berlino", Key: "berlin"},
	{Alias: "ho chi minh", Key: "hochiminh"},
	{Alias: "ho chi minh city", Key: "hochiminh"},
	{Alias: "hcmc", Key: "hochiminh"},
	{Alias: "hcm", Key: "hochiminh"},
	{Alias: "saigon", Key: "hochiminh"},
}
