package domain

// SelectedSlot строка корзины: выбранный слот с денормализованными данными
// для отображения и снапшотом цены на момент выбора. Цена не перезапрашивается:
// расхождение с суммой, которую независимо посчитает бэкенд при инициации,
// приводит к отказу транзакции
type SelectedSlot struct {
	CourtID   string
	CourtName string
	Date      CalendarDate
	Slot      TimeSlot
	Price     float64
}

// Key возвращает канонический ключ слота этой строки
func (s *SelectedSlot) Key() string {
	return SlotKey(s.CourtID, s.Date, s.Slot.StartTime)
}

// Cart упорядоченная дедуплицированная коллекция выбранных слотов
// Равенство строк определяется исключительно по SlotKey
type Cart struct {
	Items []SelectedSlot
}

// Toggle переключает выбор слота: если строка с таким же ключом уже есть -
// удаляет ее, иначе добавляет в конец. Возвращает true, если слот был добавлен
func (c *Cart) Toggle(item SelectedSlot) bool {
	key := item.Key()
	for i := range c.Items {
		if c.Items[i].Key() == key {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return false
		}
	}
	c.Items = append(c.Items, item)
	return true
}

// Remove удаляет строку по позиции
// Выход за границы - no-op: удаление может гоняться с кликами пользователя
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.Items) {
		return
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
}

// Clear безусловно очищает корзину
func (c *Cart) Clear() {
	c.Items = nil
}

// Total возвращает сумму снапшотов цен всех строк
func (c *Cart) Total() float64 {
	var total float64
	for i := range c.Items {
		total += c.Items[i].Price
	}
	return total
}

// IsSelected проверяет наличие слота в корзине по каноническому ключу
func (c *Cart) IsSelected(key string) bool {
	for i := range c.Items {
		if c.Items[i].Key() == key {
			return true
		}
	}
	return false
}

// IsEmpty возвращает true для пустой корзины
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Keys возвращает ключи всех строк в порядке добавления
func (c *Cart) Keys() []string {
	keys := make([]string, len(c.Items))
	for i := range c.Items {
		keys[i] = c.Items[i].Key()
	}
	return keys
}

// HasDuplicateKeys проверяет нарушение инварианта дедупликации
// В корректно сформированной корзине всегда false
func (c *Cart) HasDuplicateKeys() bool {
	seen := make(map[string]struct{}, len(c.Items))
	for i := range c.Items {
		key := c.Items[i].Key()
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}
