//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/fatih/set.v0"
)

func WriteReport(pathReport string, totalReads, motifHits uint64, uniqueReads set.Interface) (err error) {
	countReport := make(map[string]uint64)
	countReport["read_total"] = totalReads
	countReport["read_unique"] = uint64(uniqueReads.Size())
	countReport["motif_hits"] = motifHits
	report, _ := json.MarshalIndent(countReport, "", "  ")
	if pathReport != "-" {
		if f, err := os.Create(pathReport); err != nil {
			return err
		} else {
			f.Write(report)
			f.Close()
		}
	} else {
		fmt.Println(string(report))
	}
	return nil
}
