// Command kernelctl replays a genesis file and a block log against the
// kernel and prints a summary of the resulting object store. It exists to
// exercise the kernel and wire packages end to end; it is not part of the
// kernel's contract (§6.6 — RPC/CLI surfaces are out of scope for the
// kernel itself).
package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/weyoume/wenode-sub002/kernel"
	"github.com/weyoume/wenode-sub002/undo"
	"github.com/weyoume/wenode-sub002/wire"
)

func main() {
	genesisPath := flag.String("genesis", "", "path to genesis.json")
	blocksPath := flag.String("blocks", "", "path to a JSON-lines block log")
	verbose := flag.Bool("v", false, "log each applied block at debug level")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if *genesisPath == "" {
		log.Fatal().Msg("-genesis is required")
	}

	if err := run(log, *genesisPath, *blocksPath); err != nil {
		log.Fatal().Err(err).Msg("kernelctl failed")
	}
}

func run(log zerolog.Logger, genesisPath, blocksPath string) error {
	raw, err := os.ReadFile(genesisPath)
	if err != nil {
		return fmt.Errorf("read genesis: %w", err)
	}
	var doc genesisDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse genesis: %w", err)
	}
	chainID, err := hex.DecodeString(doc.ChainID)
	if err != nil {
		return fmt.Errorf("parse chain_id: %w", err)
	}

	c := kernel.New(chainID)
	if err := applyGenesis(c, doc); err != nil {
		return fmt.Errorf("apply genesis: %w", err)
	}
	log.Info().Int("accounts", len(doc.Accounts)).Int("assets", len(doc.Assets)).Msg("genesis applied")

	if blocksPath != "" {
		n, err := replayBlocks(log, c, blocksPath)
		if err != nil {
			return fmt.Errorf("replay blocks: %w", err)
		}
		log.Info().Int("blocks", n).Int64("head", int64(c.Head)).Msg("replay complete")
	}

	printSummary(c)
	return nil
}

// blockLine is one JSON-lines record in the block log: a height, a time
// (epoch seconds), and the hex-encoded wire.Transaction.Encode() bytes of
// each transaction in the block.
type blockLine struct {
	Height int64    `json:"height"`
	Time   int64    `json:"time"`
	Txs    []string `json:"txs"`
}

func replayBlocks(log zerolog.Logger, c *kernel.Chain, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	root := undo.Begin()
	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var bl blockLine
		if err := json.Unmarshal(line, &bl); err != nil {
			return count, fmt.Errorf("block %d: parse: %w", bl.Height, err)
		}
		block := kernel.Block{Height: bl.Height, Time: bl.Time}
		for _, txHex := range bl.Txs {
			raw, err := hex.DecodeString(txHex)
			if err != nil {
				return count, fmt.Errorf("block %d: decode tx: %w", bl.Height, err)
			}
			wtx, err := wire.DecodeTransaction(wire.NewReader(raw))
			if err != nil {
				return count, fmt.Errorf("block %d: decode tx: %w", bl.Height, err)
			}
			verified, err := wtx.RecoverVerifiedKeys(c.ChainID)
			if err != nil {
				return count, fmt.Errorf("block %d: recover keys: %w", bl.Height, err)
			}
			block.Txs = append(block.Txs, kernel.Tx{
				Ops:          wtx.Operations,
				VerifiedKeys: verified,
				Expiration:   wtx.Expiration,
			})
		}
		if err := c.ApplyBlock(root, block); err != nil {
			return count, fmt.Errorf("block %d: %w", bl.Height, err)
		}
		log.Debug().Int64("height", bl.Height).Int("txs", len(block.Txs)).Msg("block applied")
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}
	return count, nil
}

func printSummary(c *kernel.Chain) {
	fmt.Printf("head height:      %d\n", c.Head)
	fmt.Printf("accounts:         %d\n", c.Accounts.Len())
	fmt.Printf("assets:           %d\n", c.Assets.Len())
	fmt.Printf("balances:         %d\n", c.Bal.Balances.Len())
	fmt.Printf("limit orders:     %d\n", c.LimitOrders.Len())
	fmt.Printf("margin orders:    %d\n", c.MarginOrders.Len())
	fmt.Printf("liquidity pools:  %d\n", c.LiquidityPools.Len())
	fmt.Printf("credit pools:     %d\n", c.CreditPools.Len())
	fmt.Printf("credit loans:     %d\n", c.CreditLoans.Len())
	fmt.Printf("escrows:          %d\n", c.Escrows.Len())
}
