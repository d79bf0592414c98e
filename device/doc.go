// Package device emulates the machines that the integer computer programs
// drive: an ASCII console, a hull-painting robot, an arcade cabinet, a
// serial amplifier chain, a packet-switched network of cooperating nodes,
// a maze-exploring droid, and a springbot.
//
// Every device owns one cpu.Cpu seeded from its own copy of the program
// image; nothing is shared between devices. Multi-machine devices (the
// amplifier chain, the network) schedule their machines by round-robining
// Run/Step calls on a single goroutine, relying on the engine's
// cooperative waitio suspension.
package device
