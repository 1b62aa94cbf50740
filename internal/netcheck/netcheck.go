// Package netcheck — быстрая проверка наличия сетевого подключения.
// Используется формой создания записи: без сети запрос не отправляется вовсе.
package netcheck

import "net"

// Online сообщает, есть ли у машины хотя бы один активный
// не-loopback интерфейс с адресом. Это дешевая локальная эвристика,
// сервер при этом не опрашивается.
func Online() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, errAddrs := iface.Addrs()
		if errAddrs != nil {
			continue
		}
		if len(addrs) > 0 {
			return true
		}
	}
	return false
}
