package engine

// Faction is a player's hidden allegiance.
type Faction string

const (
	FactionLoyal       Faction = "LOYAL"
	FactionInfiltrated Faction = "INFILTRATED"
)

// Role is a player's hidden role. Exactly one player per game is the
// leader; the leader always belongs to the infiltrated faction.
type Role string

const (
	RoleCitizen     Role = "CITIZEN"
	RoleInfiltrated Role = "INFILTRATED"
	RoleLeader      Role = "LEADER"
)

// Winner identifies the winning side once the game is over.
type Winner string

const (
	WinnerLoyalists    Winner = "LOYALISTS"
	WinnerInfiltrators Winner = "INFILTRATORS"
)

// Power is a one-time special action unlocked by infiltrated-policy
// milestones.
type Power string

const (
	PowerInvestigate Power = "INVESTIGATE"
	PowerExecute     Power = "EXECUTE"
)

// roleCounts gives the faction split for a supported player count.
type roleCounts struct {
	citizens    int
	infiltrated int
}

// roleTable keys the conspiracy size on player count. Every row carries
// exactly one leader in addition to the listed infiltrated agents.
var roleTable = map[int]roleCounts{
	5:  {citizens: 3, infiltrated: 1},
	6:  {citizens: 4, infiltrated: 1},
	7:  {citizens: 4, infiltrated: 2},
	8:  {citizens: 5, infiltrated: 2},
	9:  {citizens: 5, infiltrated: 3},
	10: {citizens: 6, infiltrated: 3},
}

// MinPlayers and MaxPlayers bound the supported roster sizes.
const (
	MinPlayers = 5
	MaxPlayers = 10
)
