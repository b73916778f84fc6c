package batch
import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeJobs( n int ) []Job {
	jobs := make( []Job, n )
	for i := range jobs {
		jobs[i] = Job{ Index: i, Input: filepath.Join( "in", string(rune('a' + i)) ) }
	}
	return jobs
}

func TestRunEveryJobOnce( t *testing.T ) {
	jobs := makeJobs( 20 )
	var mtx sync.Mutex
	seen := map[string]int{}
	var finished int32

	results := Run( context.Background(), jobs, 4, func( ctx context.Context, job Job ) error {
		mtx.Lock()
		defer mtx.Unlock()
		seen[job.Input]++
		return nil
	}, func( Result ) {
		atomic.AddInt32( &finished, 1 )
	})

	require.Len( t, results, len(jobs) )
	assert.Equal( t, int32(len(jobs)), finished )
	for i, r := range results {
		assert.Equal( t, jobs[i], r.Job, "results keep job order" )
		assert.NoError( t, r.Err )
		assert.Equal( t, 1, seen[r.Job.Input] )
	}
	assert.Empty( t, Failed( results ) )
}

func TestRunReportsErrors( t *testing.T ) {
	jobs := makeJobs( 5 )
	boom := errors.New("boom")
	results := Run( context.Background(), jobs, 2, func( ctx context.Context, job Job ) error {
		if job.Index % 2 == 1 {
			return boom
		}
		return nil
	}, nil )

	failed := Failed( results )
	require.Len( t, failed, 2 )
	assert.Equal( t, 1, failed[0].Job.Index )
	assert.Equal( t, 3, failed[1].Job.Index )
	assert.ErrorIs( t, failed[0].Err, boom )
}

func TestRunCancelled( t *testing.T ) {
	ctx, cancel := context.WithCancel( context.Background() )
	cancel()
	var calls int32
	results := Run( ctx, makeJobs( 50 ), 1, func( ctx context.Context, job Job ) error {
		atomic.AddInt32( &calls, 1 )
		return ctx.Err()
	}, nil )
	// everything either never started or saw the cancelled context
	for _, r := range results {
		assert.ErrorIs( t, r.Err, context.Canceled )
	}
	assert.Less( t, int(calls), 50 )
}

func TestPlan( t *testing.T ) {
	dir := t.TempDir()
	for _, name := range []string{ "one.png", "two.jpg", "notes.txt" } {
		require.NoError( t, os.WriteFile( filepath.Join( dir, name ), []byte("x"), 0600 ) )
	}
	out := filepath.Join( dir, "out" )
	jobs, err := Plan( dir, out, []string{ "png", "jpg" }, "-steg", "png" )
	require.NoError( t, err )
	require.Len( t, jobs, 2 )
	assert.Equal( t, Job{ 0, filepath.Join( dir, "one.png" ), filepath.Join( out, "one-steg.png" ) }, jobs[0] )
	assert.Equal( t, Job{ 1, filepath.Join( dir, "two.jpg" ), filepath.Join( out, "two-steg.png" ) }, jobs[1] )
}
