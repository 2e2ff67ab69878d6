package countdown

import "time"

type StopTimer = stopTimer

func SetRearmTimerFunc(rearm *Rearm, afterFunc func(time.Duration, func()) stopTimer) {
	rearm.afterFunc = afterFunc
}
