package ledger_test

import (
	"fmt"
	"sort"

	"github.com/LerianStudio/lib-ledger/ledger"
)

func ExampleEngine_Apply() {
	engine := ledger.NewEngine()

	hundred, _ := ledger.ParseAmount("100.0")
	forty, _ := ledger.ParseAmount("40.0")

	records := []ledger.Record{
		ledger.NewDeposit(1, 1, hundred),
		ledger.NewWithdrawal(1, 2, forty),
		ledger.NewDispute(1, 1),
	}

	for _, record := range records {
		if err := engine.Apply(record); err != nil {
			fmt.Println("rejected:", err)
		}
	}

	views := engine.Snapshot()
	sort.Slice(views, func(i, j int) bool { return views[i].Client < views[j].Client })

	for _, view := range views {
		fmt.Printf("client=%d available=%s held=%s total=%s locked=%t\n",
			view.Client, view.Available, view.Held, view.Total, view.Locked)
	}

	// The dispute references the 100.0 deposit, but 40.0 of it was already
	// withdrawn, so the hold is rejected and balances stay put.

	// Output:
	// rejected: 0018: amount subtraction underflows (amount)
	// client=1 available=60.0000 held=0.0000 total=60.0000 locked=false
}
