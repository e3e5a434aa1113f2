package rawvec

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.size * sizeOf[T]()
}

// CapacityBytes returns the number of bytes of storage the vector owns,
// whether or not the slots hold live elements.
func (v *Vector[T]) CapacityBytes() int {
	return v.Cap() * sizeOf[T]()
}

// Utilization returns the ratio of live slots to owned slots (0.0 to 1.0).
// Returns 0.0 when no storage is allocated.
func (v *Vector[T]) Utilization() float64 {
	c := v.Cap()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Metrics returns a snapshot of the vector's storage statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.Len(),
		Cap:           v.Cap(),
		SizeInUse:     v.SizeInUse(),
		CapacityBytes: v.CapacityBytes(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector's storage.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Owned slots
	SizeInUse     int     // Bytes occupied by live elements
	CapacityBytes int     // Bytes owned
	Utilization   float64 // Ratio of live to owned slots (0.0-1.0)
}
