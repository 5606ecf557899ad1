package db

import "github.com/lazyhash/tokenpick/common"

// TOKENS is the token catalog shipped with the binary. It follows the
// usual aggregator list shape: one entry per (chain, address) pair, so a
// multichain token like USDC shows up once for every chain it is
// deployed on.
var TOKENS = []common.Token{
	// ethereum
	{ChainID: 1, Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Symbol: "USDC", Name: "USD Coin"},
	{ChainID: 1, Address: "0xdAC17F958D2ee523a2206206994597C13D831ec7", Symbol: "USDT", Name: "Tether USD"},
	{ChainID: 1, Address: "0x6B175474E89094C44Da98b954EedeAC495271d0F", Symbol: "DAI", Name: "Dai Stablecoin"},
	{ChainID: 1, Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", Symbol: "WETH", Name: "Wrapped Ether"},
	{ChainID: 1, Address: "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", Symbol: "WBTC", Name: "Wrapped BTC"},
	{ChainID: 1, Address: "0x514910771AF9Ca656af840dff83E8264EcF986CA", Symbol: "LINK", Name: "ChainLink Token"},
	{ChainID: 1, Address: "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984", Symbol: "UNI", Name: "Uniswap"},
	{ChainID: 1, Address: "0x7Fc66500c84A76Ad7e9c93437bFc5Ac33E2DDaE9", Symbol: "AAVE", Name: "Aave Token"},
	{ChainID: 1, Address: "0x9f8F72aA9304c8B593d555F12eF6589cC3A579A2", Symbol: "MKR", Name: "Maker"},
	{ChainID: 1, Address: "0xC011a73ee8576Fb46F5E1c5751cA3B9Fe0af2a6F", Symbol: "SNX", Name: "Synthetix Network Token"},
	{ChainID: 1, Address: "0xc00e94Cb662C3520282E6f5717214004A7f26888", Symbol: "COMP", Name: "Compound"},
	{ChainID: 1, Address: "0xD533a949740bb3306d119CC777fa900bA034cd52", Symbol: "CRV", Name: "Curve DAO Token"},
	{ChainID: 1, Address: "0x5A98FcBEA516Cf06857215779Fd812CA3beF1B32", Symbol: "LDO", Name: "Lido DAO Token"},
	{ChainID: 1, Address: "0xdeFA4e8a7bcBA345F687a2f1456F5Edd9CE97202", Symbol: "KNC", Name: "Kyber Network Crystal v2"},
	{ChainID: 1, Address: "0xc944E90C64B2c07662A292be6244BDf05Cda44a7", Symbol: "GRT", Name: "Graph Token"},
	{ChainID: 1, Address: "0xC18360217D8F7Ab5e7c516566761Ea12Ce7F9D72", Symbol: "ENS", Name: "Ethereum Name Service"},
	{ChainID: 1, Address: "0x6B3595068778DD592e39A122f4f5a5cF09C90fE2", Symbol: "SUSHI", Name: "SushiToken"},
	{ChainID: 1, Address: "0xba100000625a3754423978a60c9317c58a424e3D", Symbol: "BAL", Name: "Balancer"},
	{ChainID: 1, Address: "0x0bc529c00C6401aEF6D220BE8C6Ea1667F6Ad93e", Symbol: "YFI", Name: "yearn.finance"},
	{ChainID: 1, Address: "0x111111111117dC0aa78b770fA6A738034120C302", Symbol: "1INCH", Name: "1INCH Token"},
	{ChainID: 1, Address: "0xae7ab96520DE3A18E5e111B5EaAb095312D7fE84", Symbol: "stETH", Name: "Lido Staked Ether"},
	{ChainID: 1, Address: "0xae78736Cd615f374D3085123A210448E74Fc6393", Symbol: "rETH", Name: "Rocket Pool ETH"},
	{ChainID: 1, Address: "0x853d955aCEf822Db058eb8505911ED77F175b99e", Symbol: "FRAX", Name: "Frax"},
	{ChainID: 1, Address: "0x5f98805A4E8be255a32880FDeC7F6728C6568bA0", Symbol: "LUSD", Name: "LUSD Stablecoin"},
	{ChainID: 1, Address: "0x57Ab1ec28D129707052df4dF418D58a2D46d5f51", Symbol: "sUSD", Name: "Synth sUSD"},
	{ChainID: 1, Address: "0x0000000000085d4780B73119b644AE5ecd22b376", Symbol: "TUSD", Name: "TrueUSD"},
	{ChainID: 1, Address: "0x8E870D67F660D95d5be530380D0eC0bd388289E1", Symbol: "USDP", Name: "Pax Dollar"},
	{ChainID: 1, Address: "0x056Fd409E1d7A124BD7017459dFEa2F387b6d5Cd", Symbol: "GUSD", Name: "Gemini Dollar"},
	{ChainID: 1, Address: "0x6c3ea9036406852006290770BEdFcAbA0e23A0e8", Symbol: "PYUSD", Name: "PayPal USD"},
	{ChainID: 1, Address: "0x4c9EDD5852cd905f086C759E8383e09bff1E68B3", Symbol: "USDe", Name: "USDe"},
	{ChainID: 1, Address: "0x4Fabb145d64652a948d72533023f6E7A623C7C53", Symbol: "BUSD", Name: "Binance USD"},
	{ChainID: 1, Address: "0x95aD61b0a150d79219dCF64E1E6Cc01f0B64C4cE", Symbol: "SHIB", Name: "SHIBA INU"},
	{ChainID: 1, Address: "0x6982508145454Ce325dDbE47a25d4ec3d2311933", Symbol: "PEPE", Name: "Pepe"},
	{ChainID: 1, Address: "0x6810e776880C02933D47DB1b9fc05908e5386b96", Symbol: "GNO", Name: "Gnosis Token"},

	// optimism
	{ChainID: 10, Address: "0x4200000000000000000000000000000000000042", Symbol: "OP", Name: "Optimism"},
	{ChainID: 10, Address: "0x4200000000000000000000000000000000000006", Symbol: "WETH", Name: "Wrapped Ether"},
	{ChainID: 10, Address: "0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85", Symbol: "USDC", Name: "USD Coin"},
	{ChainID: 10, Address: "0x7F5c764cBc14f9669B88837ca1490cCa17c31607", Symbol: "USDC.e", Name: "Bridged USD Coin"},
	{ChainID: 10, Address: "0x94b008aA00579c1307B0EF2c499aD98a8ce58e58", Symbol: "USDT", Name: "Tether USD"},
	{ChainID: 10, Address: "0xDA10009cBd5D07dd0CeCc66161FC93D7c9000da1", Symbol: "DAI", Name: "Dai Stablecoin"},
	{ChainID: 10, Address: "0x8c6f28f2F1A3C87F0f938b96d27520d9751ec8d9", Symbol: "sUSD", Name: "Synth sUSD"},
	{ChainID: 10, Address: "0x8700dAec35aF8Ff88c16BdF0418774CB3D7599B4", Symbol: "SNX", Name: "Synthetix Network Token"},

	// bsc
	{ChainID: 56, Address: "0xbb4CdB9CBd36B01bD1cBaEF60aF814a3f6F0EE75", Symbol: "WBNB", Name: "Wrapped BNB"},
	{ChainID: 56, Address: "0x55d398326f99059fF775485246999027B3197955", Symbol: "USDT", Name: "Tether USD"},
	{ChainID: 56, Address: "0x8AC76a51cc950d9822D68b83fE1Ad97B32Cd580d", Symbol: "USDC", Name: "USD Coin"},
	{ChainID: 56, Address: "0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56", Symbol: "BUSD", Name: "Binance USD"},
	{ChainID: 56, Address: "0x0E09FaBB73Bd3Ade0a17ECC321fD13a19e81cE82", Symbol: "CAKE", Name: "PancakeSwap Token"},
	{ChainID: 56, Address: "0x2170Ed0880ac9A755fd29B2688956BD959F933F8", Symbol: "ETH", Name: "Binance-Peg Ethereum Token"},

	// polygon
	{ChainID: 137, Address: "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359", Symbol: "USDC", Name: "USD Coin"},
	{ChainID: 137, Address: "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174", Symbol: "USDC.e", Name: "Bridged USD Coin"},
	{ChainID: 137, Address: "0xc2132D05D31c914a87C6611C10748AEb04B58e8F", Symbol: "USDT", Name: "Tether USD"},
	{ChainID: 137, Address: "0x8f3Cf7ad23Cd3CaDbD9735AFf958023239c6A063", Symbol: "DAI", Name: "Dai Stablecoin"},
	{ChainID: 137, Address: "0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619", Symbol: "WETH", Name: "Wrapped Ether"},
	{ChainID: 137, Address: "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270", Symbol: "WPOL", Name: "Wrapped POL"},
	{ChainID: 137, Address: "0x53E0bca35eC356BD5ddDFebbD1Fc0fD03FaBad39", Symbol: "LINK", Name: "ChainLink Token"},
	{ChainID: 137, Address: "0xD6DF932A45C0f255f85145f286eA0b292B21C90B", Symbol: "AAVE", Name: "Aave Token"},

	// base
	{ChainID: 8453, Address: "0x4200000000000000000000000000000000000006", Symbol: "WETH", Name: "Wrapped Ether"},
	{ChainID: 8453, Address: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", Symbol: "USDC", Name: "USD Coin"},
	{ChainID: 8453, Address: "0x50c5725949A6F0c72E6C4a641F24049A917DB0Cb", Symbol: "DAI", Name: "Dai Stablecoin"},
	{ChainID: 8453, Address: "0x2Ae3F1Ec7F1F5012CFEab0185bfc7aa3cf0DEc22", Symbol: "cbETH", Name: "Coinbase Wrapped Staked ETH"},
	{ChainID: 8453, Address: "0xcbB7C0000aB88B473b1f5aFd9ef808440eed33Bf", Symbol: "cbBTC", Name: "Coinbase Wrapped BTC"},
	{ChainID: 8453, Address: "0x940181a94A35A4569E4529A3CDfB74e38FD98631", Symbol: "AERO", Name: "Aerodrome"},

	// arbitrum
	{ChainID: 42161, Address: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", Symbol: "USDC", Name: "USD Coin"},
	{ChainID: 42161, Address: "0xFF970A61A04b1cA14834A43f5dE4533eBDDB5CC8", Symbol: "USDC.e", Name: "Bridged USD Coin"},
	{ChainID: 42161, Address: "0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9", Symbol: "USDT", Name: "Tether USD"},
	{ChainID: 42161, Address: "0xDA10009cBd5D07dd0CeCc66161FC93D7c9000da1", Symbol: "DAI", Name: "Dai Stablecoin"},
	{ChainID: 42161, Address: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", Symbol: "WETH", Name: "Wrapped Ether"},
	{ChainID: 42161, Address: "0x912CE59144191C1204E64559FE8253a0e49E6548", Symbol: "ARB", Name: "Arbitrum"},
	{ChainID: 42161, Address: "0xf97f4df75117a78c1A5a0DBb814Af92458539FB4", Symbol: "LINK", Name: "ChainLink Token"},
	{ChainID: 42161, Address: "0xfc5A1A6EB076a2C7aD06eD22C90d7E710E35ad0a", Symbol: "GMX", Name: "GMX"},

	// avalanche
	{ChainID: 43114, Address: "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7", Symbol: "WAVAX", Name: "Wrapped AVAX"},
	{ChainID: 43114, Address: "0xB97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E", Symbol: "USDC", Name: "USD Coin"},
	{ChainID: 43114, Address: "0x9702230A8Ea53601f5cD2dc00fDBc13d4dF4A8c7", Symbol: "USDT", Name: "TetherToken"},
	{ChainID: 43114, Address: "0xd586E7F844cEa2F87f50152665BCbc2C279D8d70", Symbol: "DAI.e", Name: "Dai Stablecoin"},
	{ChainID: 43114, Address: "0x49D5c2BdFfac6CE2BFdB6640F4F80f226bc10bAB", Symbol: "WETH.e", Name: "Wrapped Ether"},
	{ChainID: 43114, Address: "0x6e84a6216eA6dACC71eE8E6b0a5B7322EEbC0fDd", Symbol: "JOE", Name: "JoeToken"},
}
