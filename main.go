package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/hcl"
	"github.com/rs/zerolog"

	"github.com/srini-nathan/contract-nft/registry"
)

var (
	cfg    *config
	reg    *registry.AssetRegistry
	access *registry.AccessRegistry
	ledger *registry.Ledger
	logger zerolog.Logger
)

type config struct {
	Name     string `hcl:"name"`
	Symbol   string `hcl:"symbol"`
	BaseURI  string `hcl:"base_uri"`
	Payout   string `hcl:"payout"`
	Identity string `hcl:"identity"`
	Port     int    `hcl:"port"`
	DataDir  string `hcl:"datadir"`
}

func readConfig(confpath string) *config {
	var cfg config

	dat, err := os.ReadFile(confpath)
	if err != nil {
		panic(fmt.Sprintf("unable to read the configuration: %v", err))
	}

	if err = hcl.Unmarshal(dat, &cfg); nil != err {
		panic(fmt.Sprintf("unable to parse the configuration: %v", err))
	}

	if cfg.Name == "" || cfg.Symbol == "" || cfg.BaseURI == "" ||
		cfg.Payout == "" || cfg.Identity == "" || cfg.DataDir == "" {
		panic("incomplete configuration")
	}

	return &cfg
}

func openDB(dbpath string) *bolt.DB {
	db, err := bolt.Open(dbpath, 0660, nil)
	if err != nil {
		panic(fmt.Sprintf("unable to open the database: %v", err))
	}

	return db
}

func setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger())

	r.GET("/info", handleInfo())

	r.POST("/assets", handleAddAsset())
	r.GET("/assets/:key", handleAssetInfo())
	r.GET("/assets/:key/token", handleTokenID())
	r.POST("/assets/:key/mint", handleMint())

	r.POST("/tokens/:tokenId/sell", handleSell())
	r.POST("/tokens/:tokenId/buy", handleBuy())
	r.GET("/tokens/:tokenId/owner", handleOwnerOf())
	r.GET("/tokens/:tokenId/uri", handleContentURI())

	r.POST("/members", handleRegisterMember())
	r.GET("/members/:identity", handleIsMember())

	r.POST("/accounts/:account/deposit", handleDeposit())
	r.GET("/accounts/:account/balance", handleBalance())

	return r
}

func handleInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		info := reg.Describe()
		c.JSON(http.StatusOK, gin.H{
			"name":     info.Name,
			"symbol":   info.Symbol,
			"payout":   info.Payout,
			"identity": info.Identity,
		})
	}
}

func main() {
	var confpath string
	flag.StringVar(&confpath, "conf", "", "Specify configuration file")
	flag.Parse()

	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	cfg = readConfig(confpath)

	tradeDB := openDB(fmt.Sprintf("%s/trade.db", cfg.DataDir))
	ledgerDB := openDB(fmt.Sprintf("%s/ledger.db", cfg.DataDir))

	var err error
	if access, err = registry.NewAccessRegistry(tradeDB); err != nil {
		panic(fmt.Sprintf("unable to init the access registry: %v", err))
	}
	if ledger, err = registry.NewLedger(ledgerDB); err != nil {
		panic(fmt.Sprintf("unable to init the ledger: %v", err))
	}
	reg, err = registry.NewAssetRegistry(tradeDB, access, ledger, registry.Config{
		Name:     cfg.Name,
		Symbol:   cfg.Symbol,
		BaseURI:  cfg.BaseURI,
		Payout:   cfg.Payout,
		Identity: cfg.Identity,
	})
	if err != nil {
		panic(fmt.Sprintf("unable to init the asset registry: %v", err))
	}

	logger.Info().
		Str("name", cfg.Name).
		Str("symbol", cfg.Symbol).
		Int("port", cfg.Port).
		Msg("asset registry up")

	r := setupRouter()
	r.Run(fmt.Sprintf(":%d", cfg.Port))
}
