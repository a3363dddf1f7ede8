package domain

type RoomName string

// RoomCapacity caps a room at two occupants. A room is a pairing of
// exactly two participants, not a general channel.
const RoomCapacity = 2
