package batch
import (
	"context"
	"sync"

	"pixelsteg/util"
)

/*
 * Embedding into many independent covers at once. Each cover is
 * still processed by a single ordered pass, only different covers
 * run in parallel.
 */

type Job struct {
	Index	int
	Input	string
	Output	string
}

type Result struct {
	Job	Job
	Err	error
}

type done struct {
	idx	int
	res	Result
}

// does the work for a single cover.
type EmbedFunc func( ctx context.Context, job Job ) error

// builds one job per cover in folder, outputs named after the inputs.
func Plan( folder, outDir string, extensions []string, suffix, format string ) ([]Job, error) {
	files, err := util.ReadFiles( folder, extensions )
	if err != nil {
		return nil, err
	}
	jobs := make( []Job, 0, len(files) )
	for i, f := range files {
		jobs = append( jobs, Job{
			Index: i,
			Input: f,
			Output: util.OutputName( f, outDir, suffix, format ),
		})
	}
	return jobs, nil
}

/*
 * Runs fn over jobs with the given number of workers. onDone, if set,
 * is called from a single goroutine for every finished job. Results are
 * returned in job order; jobs not started because ctx was cancelled
 * carry ctx.Err().
 */
func Run( ctx context.Context, jobs []Job, workers int, fn EmbedFunc, onDone func(Result) ) []Result {
	if workers < 1 {
		workers = 1
	}
	results := make( []Result, len(jobs) )
	for i, job := range jobs {
		results[i] = Result{ Job: job }
	}

	taskChan := make( chan int, workers )
	resultsChan := make( chan done, workers * 2 )
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range taskChan {
				job := jobs[idx]
				resultsChan <- done{ idx, Result{ Job: job, Err: fn( ctx, job ) } }
			}
		}()
	}

	// aggregator must run concurrently so workers never block on resultsChan
	aggDone := make( chan struct{} )
	started := make( []bool, len(jobs) )
	go func() {
		defer close( aggDone )
		for d := range resultsChan {
			results[d.idx] = d.res
			if onDone != nil {
				onDone( d.res )
			}
		}
	}()

dispatch:
	for i := range jobs {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case taskChan <- i:
			started[i] = true
		}
	}
	close( taskChan )
	wg.Wait()
	close( resultsChan )
	<-aggDone

	for i := range jobs {
		if started[i] == false {
			results[i].Err = ctx.Err()
		}
	}
	return results
}

func Failed( results []Result ) []Result {
	failed := []Result{}
	for _, r := range results {
		if r.Err != nil {
			failed = append( failed, r )
		}
	}
	return failed
}
