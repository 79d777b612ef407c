// Package ecs provides ECS adapters for nothofagus.
//
// [NewDonburiSink] bridges processed keyboard triggers into a [Donburi]
// world as typed events. Subscribe to [TriggerEventType] in your ECS systems
// to receive them.
//
// [SyncTransforms] copies [TransformComponent] values onto the Bellotas
// named by [BellotaComponent], so systems can move sprites without touching
// the Canvas directly.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	controller.SetTriggerSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
