package networks

// Network provides the chain level metadata tokenpick needs in order
// to render and group tokens. Implementations are registered in
// supported_networks.go and looked up either by name (including
// alternative names) or by chain id.
type Network interface {
	GetName() string
	// GetAlternativeNames returns other names this network is known by,
	// mainnet for eth, matic for polygon etc.
	GetAlternativeNames() []string
	GetChainID() int64
	GetNativeTokenSymbol() string
	// GetExplorerDomain returns the base URL of the chain's block
	// explorer without a trailing slash, empty if there is none.
	GetExplorerDomain() string
}
