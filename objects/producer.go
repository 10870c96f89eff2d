package objects

import "github.com/weyoume/wenode-sub002/store"

// Producer is the per-validator record.
type Producer struct {
	store.Base

	Account       string
	SigningKey    [33]byte
	PropsVote     ChainProperties
	MiningPower   Amount
	LastCommit    int64
	VoteStake     Amount
	TotalMissed   uint64
}

// ChainProperties is the median-chain-properties object: producer-voted
// parameters taken as the per-slot median across the active producer set.
type ChainProperties struct {
	AccountCreationFee Amount
	MaxBlockSize       uint32
	CreditMinInterest     uint32 // basis points
	CreditVariableInterest uint32 // basis points
	InterestFeePercent     uint32 // basis points
	MarginOpenRatioBps     uint32
	CreditOpenRatioBps     uint32
	CreditLiquidationRatioBps uint32
	// Curation decay constants are producer-voted rather than hardcoded.
	VoteCurationDecay    uint32
	ViewCurationDecay    uint32
	ShareCurationDecay   uint32
	CommentCurationDecay uint32
}

// ProducerSchedule is the active producer/miner slate plus voted
// properties.
type ProducerSchedule struct {
	store.Base

	TopWitnesses []string
	TopMiners    []string
	Properties   ChainProperties
	RefreshedAt  int64
}

// IrreversibleThreshold is IRREVERSIBLE_THRESHOLD: the number of distinct
// top-producer commit verifications required at a height before it is
// marked irreversible.
const IrreversibleThreshold = 15 // of 21 active producers, a 2/3+1 supermajority
