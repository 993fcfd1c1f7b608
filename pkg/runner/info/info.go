package info

import (
	"context"
	"fmt"
	"os"

	"github.com/planbook/planbook/pkg/app"
	"github.com/planbook/planbook/pkg/store"
)

// Info prints the resolved configuration and which days hold records.
type Info struct {
	Config  store.Config
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {
	if override := os.Getenv("PLANBOOK_CONFIG_PATH"); override != "" {
		fmt.Println("PLANBOOK_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("PLANBOOK_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.BasePath())

	if n.Service == nil || n.Service.Persistence == nil {
		return fmt.Errorf("info: no persistence configured")
	}

	fmt.Printf("Recorded days:\n")
	found := 0
	for _, k := range n.Service.Persistence.Keys(ctx) {
		fmt.Printf("  %s\n", k)
		found++
	}
	if found == 0 {
		fmt.Printf("  %s\n", "no days recorded")
	}

	return nil
}
