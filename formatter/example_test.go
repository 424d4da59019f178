package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/mirrorlog/core"
	"github.com/philipp01105/mirrorlog/formatter"
)

func ExampleFormatter_Format() {
	f := formatter.New("myapp", core.FixedIDs{Process: 100, Thread: 200})
	pool := formatter.NewPool()
	buf := pool.Get()
	defer pool.Put(buf)

	rec := f.Format(buf, "[Foo]", "hello")
	rec.SetLevel(core.DebugLevel)
	rec.Stamp(time.Date(2024, 1, 2, 3, 4, 5, 678000000, time.UTC))
	fmt.Print(string(rec.Line()))
	// Output: 01-02 03:04:05.678   100   200 D myapp   : [Foo]hello
}
