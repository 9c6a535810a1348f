package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/bizdesk/database/seeders"
	"github.com/shashiranjanraj/bizdesk/internal/server"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
	"github.com/shashiranjanraj/bizdesk/pkg/workerpool"
)

// bizdesk seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write every seed collection, replacing existing data",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := server.NewStore()
		if err != nil {
			return err
		}
		fmt.Println("Seeding collections...")
		return seeders.RunAll(st)
	},
}

// bizdesk collections:list
var collectionsListCmd = &cobra.Command{
	Use:   "collections:list",
	Short: "List every key in the collection store with its record count",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := server.NewStore()
		if err != nil {
			return err
		}

		keys, err := st.Keys()
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			fmt.Println("Store is empty.")
			return nil
		}
		sort.Strings(keys)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "KEY\tRECORDS")
		fmt.Fprintln(w, "---\t-------")
		for _, key := range keys {
			// Ad-hoc values (apiKey, popupState) are not record slices.
			var recs []json.RawMessage
			if _, err := st.GetValue(key, &recs); err != nil {
				fmt.Fprintf(w, "%s\t(value)\n", key)
				continue
			}
			fmt.Fprintf(w, "%s\t%d\n", key, len(recs))
		}
		return w.Flush()
	},
}

var exportDirFlag string

// bizdesk export
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every collection blob to pretty-printed JSON files",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := server.NewStore()
		if err != nil {
			return err
		}

		keys, err := st.Keys()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(exportDirFlag, 0o755); err != nil {
			return err
		}

		pool := workerpool.New(4)
		var (
			mu    sync.Mutex
			fails []error
		)
		for _, key := range keys {
			key := key
			err := pool.SubmitWait(func() {
				if err := exportOne(st, key, exportDirFlag); err != nil {
					mu.Lock()
					fails = append(fails, err)
					mu.Unlock()
					return
				}
				fmt.Printf("  - %s.json\n", key)
			})
			if err != nil {
				return err
			}
		}
		pool.Shutdown()

		if len(fails) > 0 {
			return fmt.Errorf("export: %d of %d collections failed, first: %w",
				len(fails), len(keys), fails[0])
		}
		fmt.Printf("Exported %d collections to %s\n", len(keys), exportDirFlag)
		return nil
	},
}

func exportOne(st *store.Store, key, dir string) error {
	var v any
	if _, err := st.GetValue(key, &v); err != nil {
		return fmt.Errorf("export %q: %w", key, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("export %q: %w", key, err)
	}
	return os.WriteFile(filepath.Join(dir, key+".json"), data, 0o644)
}

func init() {
	exportCmd.Flags().StringVarP(&exportDirFlag, "out", "o", "export", "Output directory")
}
