package ecs

import (
	"github.com/phanxgames/pager"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Phase says which end of a transition a message reports.
type Phase uint8

const (
	PhaseStart Phase = iota // request accepted
	PhaseEnd                // transition completed
)

// TransitionMessage is the Donburi event payload.
type TransitionMessage struct {
	Phase Phase
	pager.TransitionEvent
}

// TransitionEventType is the Donburi event type for pager transitions.
// Events are queued; call TransitionEventType.ProcessEvents to deliver them.
var TransitionEventType = events.NewEventType[TransitionMessage]()

// Bridge forwards a Controller's transition notifications to a world.
type Bridge struct {
	world donburi.World
	start pager.CallbackHandle
	end   pager.CallbackHandle
}

// NewBridge subscribes to ctrl and publishes into world until Close.
func NewBridge(world donburi.World, ctrl *pager.Controller) *Bridge {
	b := &Bridge{world: world}
	b.start = ctrl.OnTransitionStart(func(ev pager.TransitionEvent) {
		TransitionEventType.Publish(b.world, TransitionMessage{Phase: PhaseStart, TransitionEvent: ev})
	})
	b.end = ctrl.OnTransitionEnd(func(ev pager.TransitionEvent) {
		TransitionEventType.Publish(b.world, TransitionMessage{Phase: PhaseEnd, TransitionEvent: ev})
	})
	return b
}

// Close stops forwarding.
func (b *Bridge) Close() {
	b.start.Remove()
	b.end.Remove()
}
