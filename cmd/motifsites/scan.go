//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"git.sr.ht/~seqtools/CutAbacus/lib/fasta"
	"git.sr.ht/~seqtools/CutAbacus/lib/motif"
	"git.sr.ht/~seqtools/CutAbacus/lib/output"
	"git.sr.ht/~seqtools/CutAbacus/lib/stream"
)

type site struct {
	start  int
	strand int8
	window string
}

type scanJob struct {
	idx int
	rec *fasta.Record
}

type scanResult struct {
	idx  int
	name string
	hits []site
}

// run scans sequences concurrently but writes occurrences in reference
// order, so output is deterministic regardless of worker count.
func run(pat *motif.Pattern, pathFasta, pathOut string, nWorker int, verbose bool) error {
	in, err := stream.OpenInput(pathFasta)
	if err != nil {
		return err
	}
	defer in.Close()

	w, err := output.NewWriter(pathOut, "")
	if err != nil {
		return err
	}
	buf := bufio.NewWriter(w)

	var timeStart time.Time
	if verbose {
		timeStart = time.Now()
	}

	g, gctx := errgroup.WithContext(context.Background())
	chJob := make(chan scanJob, nWorker)
	chResult := make(chan scanResult, nWorker)

	// Reader
	g.Go(func() error {
		defer close(chJob)
		r := fasta.NewReader(in)
		idx := 0
		for {
			rec, err := r.Next()
			if err == io.EOF {
				return nil
			} else if err != nil {
				return err
			}
			if verbose {
				timeNow := time.Now()
				fmt.Printf("%.1fmin - Scanning %s (%d nt)\n", timeNow.Sub(timeStart).Minutes(), rec.Name, len(rec.Seq))
			}
			select {
			case <-gctx.Done():
				return gctx.Err()
			case chJob <- scanJob{idx: idx, rec: rec}:
			}
			idx++
		}
	})

	// Scan worker(s)
	g.Go(func() error {
		defer close(chResult)
		wg, wgctx := errgroup.WithContext(gctx)
		for i := 0; i < nWorker; i++ {
			wg.Go(func() error {
				for job := range chJob {
					res := scanResult{idx: job.idx, name: job.rec.Name}
					seq := job.rec.Seq
					n := pat.Len()
					pat.Scan(seq, func(start int, strand int8) {
						res.hits = append(res.hits, site{start: start, strand: strand, window: string(seq[start : start+n])})
					})
					select {
					case <-wgctx.Done():
						return wgctx.Err()
					case chResult <- res:
					}
				}
				return nil
			})
		}
		return wg.Wait()
	})

	// Write results in input order. The channel is always drained so the
	// workers never block on a failed writer.
	var writeErr error
	held := make(map[int]scanResult)
	next := 0
	for res := range chResult {
		if writeErr != nil {
			continue
		}
		held[res.idx] = res
		for {
			r, ok := held[next]
			if !ok {
				break
			}
			delete(held, next)
			for _, h := range r.hits {
				if err := output.WriteSiteBED(buf, r.name, h.start, h.start+pat.Len(), h.window, h.strand); err != nil {
					writeErr = err
					break
				}
			}
			if writeErr != nil {
				break
			}
			next++
		}
	}

	if err := g.Wait(); err != nil {
		w.Close()
		return err
	}
	if writeErr != nil {
		w.Close()
		return writeErr
	}
	if err := buf.Flush(); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	if verbose {
		timeEnd := time.Now()
		fmt.Printf("%.1fmin - Done\n", timeEnd.Sub(timeStart).Minutes())
	}
	return nil
}
