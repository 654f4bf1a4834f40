package checkout

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const orderIDPrefix = "ORD-"

var orderSeq atomic.Uint64

// newOrderID builds ids like ORD-SVZ3E41Y6TBK-1A. The base36 timestamp keeps
// ids ordered by submission time; the counter separates calls that land in the
// same nanosecond.
func newOrderID() string {
	ts := strconv.FormatInt(time.Now().UnixNano(), 36)
	seq := strconv.FormatUint(orderSeq.Add(1), 36)
	return orderIDPrefix + strings.ToUpper(ts+"-"+seq)
}
